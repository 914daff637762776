package latlong

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().IsLevelEnabled(logrus.ErrorLevel))
}

func TestPackageLoggerReceivesFilterEvents(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)

	host := &fakeHost{source: &fakeSource{64, 32}, refuse: true}
	f, err := New(host, &fakeDevice{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.Tick(0)
	f.Render()

	var skipped bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel && e.Data["function"] == "Render" {
			skipped = true
		}
		assert.Equal(t, f.ID().String(), e.Data["filter"])
	}
	assert.True(t, skipped, "expected a debug entry for the skipped pass")
}

func TestLoadFailureLoggedAtError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, err := New(&fakeHost{}, &fakeDevice{fail: errNoSuchEffect}, nil, WithLogger(logrus.NewEntry(logger)))
	assert.Error(t, err)
	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	}
}

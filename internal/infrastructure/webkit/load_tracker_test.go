package webkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadTracker(t *testing.T) {
	var finished, failed int
	tr := loadTracker{
		onFinished: func() { finished++ },
		onFailed:   func(error) { failed++ },
	}

	tr.started()
	tr.finished()
	assert.Equal(t, 1, finished)

	tr.started()
	tr.failed(errors.New("net down"))
	tr.finished()
	assert.Equal(t, 1, finished, "finish after failure is not a success")
	assert.Equal(t, 1, failed)

	tr.started()
	tr.finished()
	assert.Equal(t, 2, finished, "next navigation reports again")
}

func TestLoadTracker_NoCallbacks(t *testing.T) {
	var tr loadTracker
	assert.NotPanics(t, func() {
		tr.started()
		tr.failed(errors.New("x"))
		tr.finished()
	})
}

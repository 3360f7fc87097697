package state

import (
	"github.com/cristianoliveira/shelf/internal/catalog"
)

// loadedMsg carries the result of a load started with generation gen.
type loadedMsg struct {
	gen  uint64
	snap catalog.Snapshot
	err  error
}

// submittedMsg carries the result of a form submit.
type submittedMsg struct {
	mutation catalog.Mutation
	err      error
}

// deletedMsg carries the result of a delete.
type deletedMsg struct {
	mutation catalog.Mutation
	err      error
}

// clearMessageMsg expires the status message with sequence number seq.
type clearMessageMsg struct {
	seq uint64
}

// saveSettingsSuccessMsg is sent when settings are saved successfully.
type saveSettingsSuccessMsg struct{}

// saveSettingsFailedMsg is sent when settings save fails.
type saveSettingsFailedMsg struct {
	err error
}

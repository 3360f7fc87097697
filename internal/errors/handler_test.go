package errors

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockColorOutput struct {
	mock.Mock
}

func (m *mockColorOutput) Error(msgs ...string)   { m.Called(msgs) }
func (m *mockColorOutput) Warning(msgs ...string) { m.Called(msgs) }
func (m *mockColorOutput) Info(msgs ...string)    { m.Called(msgs) }
func (m *mockColorOutput) Success(msgs ...string) { m.Called(msgs) }

func TestCLIHandlerForwardsEachLevel(t *testing.T) {
	out := &mockColorOutput{}
	out.On("Error", []string{"boom"}).Once()
	out.On("Warning", []string{"careful"}).Once()
	out.On("Info", []string{"fyi"}).Once()
	out.On("Success", []string{"done"}).Once()

	h := NewCLIHandler(out)
	h.Error("boom")
	h.Warning("careful")
	h.Info("fyi")
	h.Success("done")

	out.AssertExpectations(t)
}

func TestDescribeSanitizesMessage(t *testing.T) {
	err := stderrors.New(`bad <script>"x"</script>`)
	assert.Equal(t, "Error saving: bad &lt;script&gt;&quot;x&quot;&lt;/script&gt;", Describe(OpSave, err))
	assert.Empty(t, Describe(OpLoad, nil))
}

func TestTUIHandlerExpireOnlyClearsOwnMessage(t *testing.T) {
	h := NewTUIHandler()

	first := h.Show("Loading...", MessageTypeInfo, 0)
	second := h.Show("Done", MessageTypeSuccess, TimeoutDone)
	require.Greater(t, second.Seq, first.Seq)

	assert.False(t, h.Expire(first.Seq), "stale timer must not clear a newer message")
	current, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "Done", current.Text)

	assert.True(t, h.Expire(second.Seq))
	_, ok = h.Current()
	assert.False(t, ok)
	assert.False(t, h.Expire(second.Seq))
}

func TestTUIHandlerShowStampsMessage(t *testing.T) {
	h := NewTUIHandler()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	shown := h.Show("e", MessageTypeError, TimeoutSave)
	msg, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, shown, msg)
	assert.True(t, msg.Type.IsError())
	assert.Equal(t, TimeoutSave, msg.Timeout)
	assert.Equal(t, fixed, msg.At)

	for _, typ := range []MessageType{MessageTypeWarning, MessageTypeInfo, MessageTypeSuccess} {
		msg = h.Show("s", typ, TimeoutConfirm)
		assert.False(t, msg.Type.IsError())
	}
	assert.Equal(t, TimeoutConfirm, msg.Timeout)
}

func TestWrapKeepsCauseAndDescribes(t *testing.T) {
	assert.NoError(t, Wrap(OpDelete, nil))

	cause := stderrors.New("status 404")
	err := Wrap(OpDelete, cause)
	assert.Equal(t, "Error deleting: status 404", err.Error())
	assert.ErrorIs(t, err, cause)

	var opErr *OpError
	assert.True(t, stderrors.As(err, &opErr))
	assert.Equal(t, OpDelete, opErr.Op)
}

package events

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	err      error
	closed   bool
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}

func (f *fakePublisher) Close() { f.closed = true }

func TestEmitter_PublishesToTypedSubject(t *testing.T) {
	pub := &fakePublisher{}
	e := NewEmitter(pub, "scratch.")

	require.NoError(t, e.Emit(Event{Type: TypePlay, Address: "0xaa", Data: map[string]int{"tokens": 50000}}))
	require.Len(t, pub.subjects, 1)
	assert.Equal(t, "scratch.play", pub.subjects[0])

	var got Event
	require.NoError(t, json.Unmarshal(pub.payloads[0], &got))
	assert.Equal(t, TypePlay, got.Type)
	assert.Equal(t, "0xaa", got.Address)
	assert.NotZero(t, got.Timestamp)

	e.Close()
	assert.True(t, pub.closed)
}

func TestEmitter_DefaultPrefix(t *testing.T) {
	pub := &fakePublisher{}
	e := NewEmitter(pub, "")
	require.NoError(t, e.Emit(Event{Type: TypeSettlement}))
	assert.Equal(t, "scratch.settlement", pub.subjects[0])
}

func TestEmitter_PublishError(t *testing.T) {
	boom := errors.New("no connection")
	e := NewEmitter(&fakePublisher{err: boom}, "")
	assert.ErrorIs(t, e.Emit(Event{Type: TypePity}), boom)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Emit(Event{Type: TypePlay}))
	require.NoError(t, r.Emit(Event{Type: TypePity}))
	require.NoError(t, r.Emit(Event{Type: TypePlay}))

	assert.Len(t, r.Events(), 3)
	assert.Len(t, r.OfType(TypePlay), 2)
	assert.NoError(t, Nop().Emit(Event{}))
}

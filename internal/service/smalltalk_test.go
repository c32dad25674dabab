package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmalltalkReply(t *testing.T) {
	reply, ok := SmalltalkReply("Hello there")
	assert.True(t, ok)
	assert.Equal(t, greetingReply, reply)

	reply, ok = SmalltalkReply("how are you today?")
	assert.True(t, ok)
	assert.Equal(t, wellbeingReply, reply)

	reply, ok = SmalltalkReply("Thanks a lot")
	assert.True(t, ok)
	assert.Equal(t, gratitudeReply, reply)

	_, ok = SmalltalkReply("recharge in Guntur")
	assert.False(t, ok)
}

func TestSmalltalkPriorityOrder(t *testing.T) {
	// A query matching several categories gets the greeting reply because
	// greetings are checked first.
	reply, ok := SmalltalkReply("hello and thank you")
	assert.True(t, ok)
	assert.Equal(t, greetingReply, reply)
}

package server

import (
	"os"
	"testing"
	"time"

	"rogue-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

func TestForwardUpdates_DropsFramesWhenWriterGone(t *testing.T) {
	// A dead writePump: nobody drains Send, buffer of one.
	c := &Client{Send: make(chan []byte, 1)}

	updates := make(chan []byte, 3)
	updates <- []byte("first")
	updates <- []byte("second")
	updates <- []byte("third")
	close(updates)

	done := make(chan struct{})
	go func() {
		c.forwardUpdates(updates)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwardUpdates blocked on a full send buffer")
	}

	if msg, ok := <-c.Send; !ok || string(msg) != "first" {
		t.Fatalf("buffered frame = %q (ok=%v), want %q", msg, ok, "first")
	}
	if _, ok := <-c.Send; ok {
		t.Error("send channel must be closed once the hub feed ends")
	}
}

package layers

import "testing"

func TestCreateCenteredLayer_Empty(t *testing.T) {
	if layer := CreateCenteredLayer("", 80, 24); layer != nil {
		t.Error("expected nil layer for empty content")
	}
}

func TestCreateCenteredLayer(t *testing.T) {
	if layer := CreateCenteredLayer("hello", 80, 24); layer == nil {
		t.Fatal("expected a layer")
	}
	// Content wider than the screen still yields a layer at the origin
	if layer := CreateCenteredLayer("a very long line of content", 4, 1); layer == nil {
		t.Fatal("expected a layer for oversized content")
	}
}

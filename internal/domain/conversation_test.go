package domain

import "testing"

func TestConversation_AppendTurnOrder(t *testing.T) {
	var c Conversation
	c = c.AppendTurn("q1", "a1")
	c = c.AppendTurn("q2", "a2")

	if c.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", c.Len())
	}
	want := []Message{
		{Role: RoleUser, Content: "q1"},
		{Role: RoleAssistant, Content: "a1"},
		{Role: RoleUser, Content: "q2"},
		{Role: RoleAssistant, Content: "a2"},
	}
	for i, m := range want {
		if c[i] != m {
			t.Errorf("entry %d: got %+v want %+v", i, c[i], m)
		}
	}
}

func TestConversation_AppendDoesNotMutateOriginal(t *testing.T) {
	base := Conversation{{Role: RoleUser, Content: "q"}}
	grown := base.Append(Message{Role: RoleAssistant, Content: "a"})

	if base.Len() != 1 {
		t.Errorf("original log mutated, len=%d", base.Len())
	}
	if grown.Len() != 2 {
		t.Errorf("new log missing entry, len=%d", grown.Len())
	}
	// growing the original further must not leak into the other log
	other := base.Append(Message{Role: RoleAssistant, Content: "b"})
	if grown[1].Content != "a" || other[1].Content != "b" {
		t.Error("logs share backing storage")
	}
}

package topic

import "testing"

func TestTopic_String(t *testing.T) {
	if got := Topic("sensor").String(); got != "sensor" {
		t.Errorf("String() = %q, want %q", got, "sensor")
	}
}

func TestTopic_IsWildcard(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{Wildcard, true},
		{Topic("*"), true},
		{Topic("sensor"), false},
		{Topic("**"), false},
		{Topic(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.topic.String(), func(t *testing.T) {
			if got := tt.topic.IsWildcard(); got != tt.want {
				t.Errorf("IsWildcard(%q) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func TestTopics(t *testing.T) {
	got := Topics("a", "b")
	if len(got) != 2 || got[0] != Topic("a") || got[1] != Topic("b") {
		t.Errorf("Topics(a, b) = %v", got)
	}
	if got := Topics(); len(got) != 0 {
		t.Errorf("Topics() = %v, want empty", got)
	}
}

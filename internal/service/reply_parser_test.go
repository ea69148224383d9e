package service

import (
	"strings"
	"testing"
)

func TestParseReplyNoMarker(t *testing.T) {
	parser := ReplyParser{}
	text, stopped := parser.ParseReply("Let's keep talking about your openness.")
	if stopped {
		t.Fatalf("expected stopped=false")
	}
	if text != "Let's keep talking about your openness." {
		t.Fatalf("text changed: %q", text)
	}
}

func TestParseReplyMarkerCasings(t *testing.T) {
	parser := ReplyParser{}
	for _, reply := range []string{
		"Goodbye, take care. [END_CHAT]",
		"Goodbye, take care. [end_chat]",
		"Goodbye, take care. [End_Chat]",
	} {
		text, stopped := parser.ParseReply(reply)
		if !stopped {
			t.Fatalf("expected stopped=true for %q", reply)
		}
		if text != "Goodbye, take care." {
			t.Fatalf("marker not stripped: %q", text)
		}
	}
}

func TestParseReplyMarkerMidText(t *testing.T) {
	parser := ReplyParser{}
	text, stopped := parser.ParseReply("Goodbye. [END_CHAT] See you.")
	if !stopped {
		t.Fatalf("expected stopped=true")
	}
	if text != "Goodbye.  See you." {
		t.Fatalf("unexpected cleaned text: %q", text)
	}
}

func TestParseReplyMultibyteRunes(t *testing.T) {
	parser := ReplyParser{}

	// Runas cuya mayuscula ocupa mas bytes que la minuscula (ej. U+023F).
	prefix := strings.Repeat("ȿ", 20)

	text, stopped := parser.ParseReply(prefix + " adios. [END_CHAT]")
	if !stopped {
		t.Fatalf("expected stopped=true with multibyte prefix")
	}
	if text != prefix+" adios." {
		t.Fatalf("marker not stripped cleanly: %q", text)
	}

	text, stopped = parser.ParseReply(prefix + " sigamos hablando.")
	if stopped {
		t.Fatalf("expected stopped=false without marker")
	}
	if text != prefix+" sigamos hablando." {
		t.Fatalf("text changed: %q", text)
	}
}

func TestParseReplyPlainStopWordIsNotSentinel(t *testing.T) {
	parser := ReplyParser{}
	// El redesign del centinela evita falsos positivos con "stop" literal.
	_, stopped := parser.ParseReply("You could stop worrying so much.")
	if stopped {
		t.Fatalf("plain 'stop' in prose must not terminate the chat")
	}
}

func TestContainsStopWord(t *testing.T) {
	cases := map[string]bool{
		"please STOP now":  true,
		"Stop":             true,
		"stop":             true,
		"unstoppable urge": true,
		"tell me more":     false,
		"":                 false,
	}
	for message, want := range cases {
		if got := ContainsStopWord(message); got != want {
			t.Fatalf("ContainsStopWord(%q) = %v, want %v", message, got, want)
		}
	}
}

package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestNewReplayInput_ReadError(t *testing.T) {
	_, err := NewReplayInput(failingReader{}, &bytes.Buffer{})
	if !errors.Is(err, ErrInputFailed) {
		t.Fatalf("expected ErrInputFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to read input: broken pipe") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestReplayInput_Choose(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     int
		want    int
		wantOut string
	}{
		{"valid index", "1\n", 0, 1, "Compiler: gcc (non-interactive)\n"},
		{"surrounding whitespace", "  1 \r\n", 0, 1, "Compiler: gcc (non-interactive)\n"},
		{"out of range falls back", "7\n", 0, 0, "Compiler: clang (non-interactive)\n"},
		{"negative falls back", "-1\n", 1, 1, "Compiler: gcc (non-interactive)\n"},
		{"not a number falls back", "gcc\n", 0, 0, "Compiler: clang (non-interactive)\n"},
		{"empty line falls back", "\n", 1, 1, "Compiler: gcc (non-interactive)\n"},
		{"exhausted falls back", "", 1, 1, "Compiler: gcc (non-interactive)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			in, err := NewReplayInput(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("NewReplayInput() error = %v", err)
			}
			got, err := in.Choose("Compiler", []string{"clang", "gcc"}, tt.def)
			if err != nil {
				t.Fatalf("Choose() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Choose() = %d, want %d", got, tt.want)
			}
			if out.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestReplayInput_ConsumesInOrder(t *testing.T) {
	var out bytes.Buffer
	in, err := NewReplayInput(strings.NewReader("my-app\n1\n2\n"), &out)
	if err != nil {
		t.Fatalf("NewReplayInput() error = %v", err)
	}
	name, _ := in.Answer("Project Name [.]: ")
	if name != "my-app" {
		t.Errorf("Answer() = %q, want %q", name, "my-app")
	}
	first, _ := in.Choose("Compiler", []string{"clang", "gcc"}, 0)
	second, _ := in.Choose("Strictness", []string{"loose", "strict", "strictest"}, 1)
	if first != 1 || second != 2 {
		t.Errorf("got choices %d, %d; want 1, 2", first, second)
	}
	if rest, _ := in.Answer("Extra"); rest != "" {
		t.Errorf("Answer() after last line = %q, want empty", rest)
	}
}

func TestReplayInput_ExhaustedNeverFails(t *testing.T) {
	in, err := NewReplayInput(strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewReplayInput() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		answer, err := in.Answer("Project Name [.]: ")
		if err != nil || answer != "" {
			t.Fatalf("Answer() #%d = %q, %v; want empty answer", i, answer, err)
		}
		idx, err := in.Choose("Generate tests?", []string{"No", "Yes"}, 1)
		if err != nil || idx != 1 {
			t.Fatalf("Choose() #%d = %d, %v; want default 1", i, idx, err)
		}
	}
}

func TestReplayInput_Highlight(t *testing.T) {
	var out bytes.Buffer
	in, err := NewReplayInput(strings.NewReader("0\n"), &out, WithHighlight(strings.ToUpper))
	if err != nil {
		t.Fatalf("NewReplayInput() error = %v", err)
	}
	if _, err := in.Choose("Run git init?", []string{"No", "Yes"}, 1); err != nil {
		t.Fatalf("Choose() error = %v", err)
	}
	if got := out.String(); got != "Run git init?: NO (non-interactive)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestReplayInput_AnswerEchoesPrompt(t *testing.T) {
	var out bytes.Buffer
	in, err := NewReplayInput(strings.NewReader("demo\n"), &out)
	if err != nil {
		t.Fatalf("NewReplayInput() error = %v", err)
	}
	if _, err := in.Answer("Project Name [.]: "); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if got := out.String(); got != "Project Name [.]: demo\n" {
		t.Errorf("output = %q", got)
	}
}

func TestChoose_NoOptions(t *testing.T) {
	replay, _ := NewReplayInput(strings.NewReader("0\n"), &bytes.Buffer{})
	if _, err := replay.Choose("Empty", nil, 0); !errors.Is(err, ErrNoOptions) {
		t.Errorf("replay Choose() error = %v, want ErrNoOptions", err)
	}
	term := NewTerminalInput(strings.NewReader(""), &bytes.Buffer{})
	if _, err := term.Choose("Empty", nil, 0); !errors.Is(err, ErrNoOptions) {
		t.Errorf("terminal Choose() error = %v, want ErrNoOptions", err)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
	}
	for _, tt := range tests {
		got := splitLines(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitLines(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestNewInputSource_SelectsByHeadless(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	src, err := NewInputSource(strings.NewReader("1\n"), &bytes.Buffer{}, hm)
	if err != nil {
		t.Fatalf("NewInputSource() error = %v", err)
	}
	if _, ok := src.(*ReplayInput); !ok {
		t.Errorf("headless source = %T, want *ReplayInput", src)
	}

	hm.ForceHeadless(false)
	src, err = NewInputSource(strings.NewReader(""), &bytes.Buffer{}, hm)
	if err != nil {
		t.Fatalf("NewInputSource() error = %v", err)
	}
	if _, ok := src.(*TerminalInput); !ok {
		t.Errorf("terminal source = %T, want *TerminalInput", src)
	}
}

package log

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// The formatter must pass messages through untouched, line endings included:
// callers inside a raw-mode terminal session terminate their lines with \r\n.
func TestPrefixFormatterPassesMessagesThrough(t *testing.T) {
	entry := &logrus.Entry{Level: logrus.DebugLevel, Message: "Asking 9 x 9 (tick 3).\r\n"}
	out, err := prefixFormatter{}.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "\033[36mDebug: \033[0m") {
		t.Fatalf("unexpected prefix: %q", out)
	}
	if !strings.HasSuffix(string(out), "Asking 9 x 9 (tick 3).\r\n") {
		t.Fatalf("message was altered: %q", out)
	}
}

func TestPrefixFormatterPrefixes(t *testing.T) {
	cases := []struct {
		entry  *logrus.Entry
		prefix string
	}{
		{&logrus.Entry{Level: logrus.InfoLevel, Message: "plain\n"}, "plain\n"},
		{&logrus.Entry{Level: logrus.WarnLevel, Message: "w\n"}, "\033[33mWarning: \033[0m"},
		{&logrus.Entry{Level: logrus.ErrorLevel, Message: "e\n"}, "\033[31mError: \033[0m"},
		{&logrus.Entry{Level: logrus.InfoLevel, Message: "s\n", Data: logrus.Fields{"success": true}}, "\033[32mSuccess: \033[0m"},
	}
	for _, c := range cases {
		out, err := prefixFormatter{}.Format(c.entry)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(out), c.prefix) {
			t.Fatalf("unexpected output for level %s: %q", c.entry.Level, out)
		}
	}
}

func TestPrefixFormatterIndentation(t *testing.T) {
	IndentationLevel = 2
	defer func() { IndentationLevel = 0 }()

	out, err := prefixFormatter{}.Format(&logrus.Entry{Level: logrus.InfoLevel, Message: "deep\n"})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "    deep\n" {
		t.Fatalf("unexpected indentation: %q", out)
	}
}

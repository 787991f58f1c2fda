package notify_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/devantler-tech/templ-gen/pkg/ui/notify"
	"github.com/devantler-tech/templ-gen/pkg/ui/timer"
	"github.com/stretchr/testify/assert"
)

func TestConvenienceFunctions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(out *bytes.Buffer)
		want  string
	}{
		{
			name:  "error",
			write: func(out *bytes.Buffer) { notify.Errorf(out, "failed to write %s", "x.yaml") },
			want:  "✗ failed to write x.yaml\n",
		},
		{
			name:  "warning",
			write: func(out *bytes.Buffer) { notify.Warningf(out, "careful") },
			want:  "⚠ careful\n",
		},
		{
			name:  "activity",
			write: func(out *bytes.Buffer) { notify.Activityf(out, "generating templates") },
			want:  "► generating templates\n",
		},
		{
			name:  "generate",
			write: func(out *bytes.Buffer) { notify.Generatef(out, "Generated %s", "templ-gen/a-gateway.yaml") },
			want:  "✚ Generated templ-gen/a-gateway.yaml\n",
		},
		{
			name:  "remove",
			write: func(out *bytes.Buffer) { notify.Removef(out, "Deleted: %s", "templ-gen/a-gateway.yaml") },
			want:  "✖ Deleted: templ-gen/a-gateway.yaml\n",
		},
		{
			name:  "list item",
			write: func(out *bytes.Buffer) { notify.ListItemf(out, "%s", "a-gateway.yaml") },
			want:  "- a-gateway.yaml\n",
		},
		{
			name:  "success",
			write: func(out *bytes.Buffer) { notify.Successf(out, "done") },
			want:  "✔ done\n",
		},
		{
			name:  "info",
			write: func(out *bytes.Buffer) { notify.Infof(out, "Service FQDN: %s", "a.example.org") },
			want:  "ℹ Service FQDN: a.example.org\n",
		},
		{
			name:  "title",
			write: func(out *bytes.Buffer) { notify.Titlef(out, "📝", "Generate %s", "templates") },
			want:  "📝 Generate templates\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			testCase.write(&out)

			assert.Equal(t, testCase.want, out.String())
		})
	}
}

func TestWriteMessage_ContentWithoutArgsIsLiteral(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{Type: notify.InfoType, Content: "100% literal", Writer: &out})

	assert.Equal(t, "ℹ 100% literal\n", out.String())
}

func TestWriteMessage_DefaultTitleEmoji(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{Type: notify.TitleType, Content: "Templates", Writer: &out})

	assert.Equal(t, "ℹ️ Templates\n", out.String())
}

func TestWriteMessage_MultilineIndent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Infof(&out, "Domain configuration:\nService FQDN: a.example.org\n\nGateway hosts: *.example.org")

	assert.Equal(
		t,
		"ℹ Domain configuration:\n  Service FQDN: a.example.org\n\n  Gateway hosts: *.example.org\n",
		out.String(),
	)
}

func TestSuccessWithTimerf(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tmr := timer.NewWithClock(func() time.Time { return now })
	tmr.Start()

	now = now.Add(1500 * time.Millisecond)

	var out bytes.Buffer

	notify.SuccessWithTimerf(&out, tmr, "generated %d templates", 4)

	assert.Equal(t, "✔ generated 4 templates\n⏲ current: 1.5s\n  total:  1.5s\n", out.String())
}

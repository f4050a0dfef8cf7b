package cpp

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/rocshmem/shmemgen/rmagen/ir"
)

// commentWidth is the maximum column of wrapped documentation lines.
const commentWidth = 80

// Transfer sentences, shared by the blocking and non-blocking variants.
const (
	putTransfer = `{{.verb}} contiguous data of \p nelems elements from \p source on the calling PE to \p dest on \p pe.`
	getTransfer = `{{.verb}} contiguous data of \p nelems elements from \p source on \p pe to \p dest on the calling PE.`

	nonBlockingCompletion = `The operation is not blocking. The caller will return as soon as the request is posted. The caller must call rocshmem_quiet() on the same context if completion notification is required.`

	participation = `This function can be called from divergent control paths at {{.granularity}} granularity. However, all threads in a {{.participants}} must collectively participate in the call using the same arguments.`
)

type docKey struct {
	put      bool
	blocking bool
}

type docTemplate struct {
	transfer   string
	completion string
}

var docTemplates = map[docKey]docTemplate{
	{put: true, blocking: true}: {
		transfer:   putTransfer,
		completion: `The caller will block until the operation completes locally (it is safe to reuse \p source). The caller must call into rocshmem_quiet() if remote completion is required.`,
	},
	{put: false, blocking: true}: {
		transfer:   getTransfer,
		completion: `The caller will block until the operation completes and data has been placed in \p dest.`,
	},
	{put: true, blocking: false}: {
		transfer:   putTransfer,
		completion: nonBlockingCompletion,
	},
	{put: false, blocking: false}: {
		transfer:   getTransfer,
		completion: nonBlockingCompletion,
	},
}

// paramDocs documents the context-qualified parameter list. The default-context
// form takes the same parameters minus ctx.
var paramDocs = []string{
	`@param[in] ctx    Context with which to perform this operation.`,
	`@param[in] dest   Destination address. Must be an address on the symmetric`,
	`                  heap.`,
	`@param[in] source Source address. Must be an address on the symmetric heap.`,
	`@param[in] nelems Size of the transfer in number of elements.`,
	`@param[in] pe     PE of the remote process.`,
}

// renderProse fills in the brief and participation paragraphs for a family
// and granularity. Unsubstituted tokens are an error.
func renderProse(f ir.OperationFamily, g ir.Granularity) ([]string, error) {
	tmpl, ok := docTemplates[docKey{put: f.IsPut(), blocking: f.IsBlocking()}]
	if !ok {
		return nil, fmt.Errorf("no documentation template for %s", f)
	}

	src := tmpl.transfer + " " + tmpl.completion + "\n\n" + participation
	t, err := template.New(f.String()).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", f, err)
	}

	data := map[string]string{
		"verb":         f.Verb(),
		"granularity":  g.Phrase(),
		"participants": g.Participants(),
	}
	for key, value := range data {
		if value == "" {
			return nil, &ir.ValidationError{
				Code:    "missing_substitution",
				Message: fmt.Sprintf("%s/%s: empty value for %q", f, g, key),
			}
		}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, &ir.ValidationError{
			Code:    "missing_substitution",
			Message: fmt.Sprintf("%s/%s: %v", f, g, err),
		}
	}

	out := buf.String()
	if strings.Contains(out, "{{") || strings.Contains(out, "<no value>") {
		return nil, &ir.ValidationError{
			Code:    "missing_substitution",
			Message: fmt.Sprintf("%s/%s: unsubstituted token in documentation", f, g),
		}
	}
	return strings.Split(out, "\n\n"), nil
}

// wrapLines greedily fills words onto lines no wider than width.
// The first line starts with first, the rest with rest.
func wrapLines(text, first, rest string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{strings.TrimRight(first, " ")}
	}

	var lines []string
	line := first + words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = rest + w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

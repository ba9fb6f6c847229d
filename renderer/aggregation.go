package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/funding"
	md "github.com/nao1215/markdown"
)

// AggregationMarkdown renders ranked groups of an aggregation.
func AggregationMarkdown(a funding.Aggregation, groups []funding.Group, currency string, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s by %s", titleCase(a.Reducer.String()), a.Dimension))
	if len(groups) == 0 {
		doc.PlainText(noData(a.Dimension.String()))
		return doc.String()
	}
	opts.groupTable(doc, titleCase(a.Dimension.String()), a.Reducer, currency, groups)
	return doc.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

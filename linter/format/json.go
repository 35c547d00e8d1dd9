package format

import (
	"encoding/json"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonOutput struct {
	Results []jsonResult `json:"results"`
	Summary jsonSummary  `json:"summary"`
}

type jsonResult struct {
	Rule     string       `json:"rule"`
	Plugin   string       `json:"plugin,omitempty"`
	Severity string       `json:"severity"`
	Message  string       `json:"message"`
	Help     string       `json:"help,omitempty"`
	File     string       `json:"file,omitempty"`
	Location jsonLocation `json:"location"`
	Labels   []jsonLabel  `json:"labels,omitempty"`
}

type jsonLocation struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
}

type jsonLabel struct {
	Message  string       `json:"message,omitempty"`
	Location jsonLocation `json:"location"`
}

type jsonSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Hints    int `json:"hints"`
}

func (f *JSONFormatter) Format(results []error) (string, error) {
	output := jsonOutput{
		Results: make([]jsonResult, 0, len(results)),
	}
	var c counts

	for _, err := range results {
		d, ok := asDiagnostic(err)
		if !ok {
			// Non-diagnostic error
			output.Results = append(output.Results, jsonResult{
				Rule:     "internal",
				Severity: "error",
				Message:  err.Error(),
			})
			c.errors++
			continue
		}

		result := jsonResult{
			Rule:     d.Rule,
			Plugin:   d.Plugin,
			Severity: d.Severity.String(),
			Message:  d.Message(),
			Help:     d.Help(),
			File:     d.File,
			Location: jsonLocation{
				Line:   d.Span.Line,
				Column: d.Span.Column,
				Start:  d.Span.Start,
				End:    d.Span.End,
			},
		}
		for _, l := range d.Labels {
			result.Labels = append(result.Labels, jsonLabel{
				Message: l.Message,
				Location: jsonLocation{
					Line:   l.Span.Line,
					Column: l.Span.Column,
					Start:  l.Span.Start,
					End:    l.Span.End,
				},
			})
		}

		output.Results = append(output.Results, result)
		c.add(d.Severity)
	}

	output.Summary = jsonSummary{
		Total:    len(results),
		Errors:   c.errors,
		Warnings: c.warnings,
		Hints:    c.hints,
	}

	bytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

package jira

import "strings"

// Doc is an Atlassian Document Format document. REST v3 requires rich-text
// fields such as description to be sent in this form.
type Doc struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Content []Node `json:"content"`
}

type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// NewDoc renders text as one paragraph per non-blank line. Blank text yields nil.
func NewDoc(text string) *Doc {
	var paragraphs []Node
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paragraphs = append(paragraphs, Node{
			Type:    "paragraph",
			Content: []Node{{Type: "text", Text: line}},
		})
	}
	if len(paragraphs) == 0 {
		return nil
	}
	return &Doc{Type: "doc", Version: 1, Content: paragraphs}
}

package domain

import "strings"

// Note is free text with tags.
type Note struct {
	Record  `bson:",inline"`
	Title   string   `json:"title" bson:"title"`
	Content string   `json:"content" bson:"content"`
	Tags    []string `json:"tags" bson:"tags"`
	Subject string   `json:"subject,omitempty" bson:"subject,omitempty"`
}

// NoteFields carries caller supplied note fields.
type NoteFields struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
	Subject *string   `json:"subject"`
}

// NewNote builds a note from create fields. Tags default to an empty set.
func NewNote(f NoteFields) Note {
	n := Note{Tags: []string{}}
	n.Apply(f)
	return n
}

// Apply replaces every field present in f. Tags are de-duplicated since they
// form a set.
func (n *Note) Apply(f NoteFields) {
	if f.Title != nil {
		n.Title = strings.TrimSpace(*f.Title)
	}
	if f.Content != nil {
		n.Content = *f.Content
	}
	if f.Tags != nil {
		n.Tags = uniqueTags(*f.Tags)
	}
	if f.Subject != nil {
		n.Subject = *f.Subject
	}
}

// HasTag reports whether the note carries tag.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

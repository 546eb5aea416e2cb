package interpreter

import (
	"encoding/json"
	"strings"
)

// StripCodeFence removes a markdown code fence around raw, labelled json or
// not. Text without a fence is returned trimmed.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = text[4:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// modelReply is the shape the prompt asks the model for
type modelReply struct {
	Type string `json:"type"`
	Data Fields `json:"data"`
}

// ParseResponse decodes a model reply. When the whole reply is not JSON the
// first balanced top-level object inside it is tried instead. The bool is
// false when neither yields an object.
func ParseResponse(input, raw string) (Command, bool) {
	text := StripCodeFence(raw)

	reply, ok := decodeReply(text)
	if !ok {
		obj, found := firstObject(text)
		if !found {
			return Unknown(input), false
		}
		if reply, ok = decodeReply(obj); !ok {
			return Unknown(input), false
		}
	}

	cmd := Command{
		Input:  input,
		Kind:   parseKind(reply.Type),
		Action: ActionCreate,
		Fields: reply.Data,
	}
	if cmd.Fields == nil {
		cmd.Fields = Fields{}
	}
	// The kind alone decides the verb; the model's action is advisory.
	if cmd.Kind == KindNavigation {
		cmd.Action = ActionNavigate
	}
	return cmd, true
}

func decodeReply(text string) (modelReply, bool) {
	var reply modelReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return modelReply{}, false
	}
	return reply, true
}

// firstObject returns the first balanced {...} in text, skipping braces that
// appear inside JSON strings.
func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

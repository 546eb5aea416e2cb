package interpreter

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Interpreter classifies free text with a Model. It never fails: anything it
// cannot make sense of becomes an Unknown command.
type Interpreter struct {
	model  Model
	logger *zap.Logger
}

// New creates an interpreter. A nil logger discards output.
func New(model Model, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{model: model, logger: logger}
}

// Interpret resolves text to a command. now is the caller's local time and
// anchors relative dates.
func (i *Interpreter) Interpret(ctx context.Context, text string, now time.Time) Command {
	if strings.TrimSpace(text) == "" {
		return Unknown(text)
	}

	raw, err := i.model.Generate(ctx, BuildPrompt(text))
	if err != nil {
		i.logger.Warn("model call failed, treating command as unknown", zap.Error(err))
		return Unknown(text)
	}

	cmd, ok := ParseResponse(text, raw)
	if !ok {
		i.logger.Warn("model reply is not JSON, treating command as unknown")
		i.logger.Debug("unparseable model reply", zap.String("raw", raw))
		return cmd
	}

	ResolveRelativeDate(text, cmd.Kind, cmd.Fields, now)
	i.logger.Debug("command interpreted", zap.String("kind", string(cmd.Kind)))
	return cmd
}

package events

import "github.com/atomicstack/gradebook/internal/logging"

// MenuTracer records selection menu activity. The menu argument is the
// menu's Name.
type MenuTracer struct{}

type CommandTracer struct{}

type FormTracer struct{}

type formReason string

const (
	FormReasonEscape formReason = "escape"
	FormReasonEmpty  formReason = "empty"
	FormReasonAbort  formReason = "abort"
)

var (
	Menu    = MenuTracer{}
	Command = CommandTracer{}
	Form    = FormTracer{}
)

func (MenuTracer) Render(menu string, entries, shown int, buffer string) {
	logging.Trace("menu.render", map[string]interface{}{
		"menu":    menu,
		"entries": entries,
		"shown":   shown,
		"buffer":  buffer,
	})
}

func (MenuTracer) Accept(menu, buffer string) {
	logging.Trace("menu.accept", map[string]interface{}{"menu": menu, "buffer": buffer})
}

func (MenuTracer) Reject(menu, buffer string, key rune) {
	logging.Trace("menu.reject", map[string]interface{}{"menu": menu, "buffer": buffer, "key": string(key)})
}

func (MenuTracer) Backspace(menu, buffer string) {
	logging.Trace("menu.backspace", map[string]interface{}{"menu": menu, "buffer": buffer})
}

// Reset records a buffer dropped because the refreshed list no longer has a
// matching entry.
func (MenuTracer) Reset(menu, buffer string, entries int) {
	logging.Trace("menu.reset", map[string]interface{}{"menu": menu, "buffer": buffer, "entries": entries})
}

func (MenuTracer) Commit(menu string, index int, done bool) {
	logging.Trace("menu.commit", map[string]interface{}{"menu": menu, "index": index, "done": done})
}

func (MenuTracer) ZeroAction(menu string, done bool) {
	logging.Trace("menu.zero", map[string]interface{}{"menu": menu, "done": done})
}

func (MenuTracer) Exit(menu, reason string) {
	logging.Trace("menu.exit", map[string]interface{}{"menu": menu, "reason": reason})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, done bool, err error) {
	payload := map[string]interface{}{"id": id, "label": label, "done": done}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (FormTracer) Submit(title, value string) {
	logging.Trace("form.submit", map[string]interface{}{"title": title, "value": value})
}

func (FormTracer) Cancel(title string, reason formReason) {
	logging.Trace("form.cancel", map[string]interface{}{"title": title, "reason": string(reason)})
}

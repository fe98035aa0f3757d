package events

import "github.com/atomicstack/gradebook/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(kind, location string) {
	logging.Trace("store.open", map[string]interface{}{"kind": kind, "location": location})
}

func (StoreTracer) Load(name string, err error) {
	logging.Trace("store.load", errPayload(map[string]interface{}{"name": name}, err))
}

func (StoreTracer) Save(name string, err error) {
	logging.Trace("store.save", errPayload(map[string]interface{}{"name": name}, err))
}

func (StoreTracer) Delete(name string, err error) {
	logging.Trace("store.delete", errPayload(map[string]interface{}{"name": name}, err))
}

func (StoreTracer) Reload(names []string) {
	logging.Trace("store.reload", map[string]interface{}{"names": names})
}

func errPayload(payload map[string]interface{}, err error) map[string]interface{} {
	if err != nil {
		payload["error"] = err.Error()
	}
	return payload
}

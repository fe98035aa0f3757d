package testutil

import (
	"io"
	"strings"

	"github.com/atomicstack/gradebook/internal/terminal"
)

// Keys replays a fixed key script and reports io.EOF once it runs dry.
type Keys struct {
	keys []terminal.Key
	read int
	// OnRead runs before each key is handed out, with the number of keys
	// already consumed.
	OnRead func(n int)
}

// TypeKeys parses a script where plain runes are typed as-is and the tokens
// <enter>, <bs>, <esc>, <ctrl+c> and <?> stand for special keys.
func TypeKeys(script string) *Keys {
	k := &Keys{}
	for len(script) > 0 {
		if strings.HasPrefix(script, "<") {
			if end := strings.IndexByte(script, '>'); end > 0 {
				if key, ok := specialKeys[script[1:end]]; ok {
					k.keys = append(k.keys, key)
					script = script[end+1:]
					continue
				}
			}
		}
		r := []rune(script)[0]
		k.keys = append(k.keys, terminal.RuneKey(r))
		script = script[len(string(r)):]
	}
	return k
}

var specialKeys = map[string]terminal.Key{
	"enter":  {Code: terminal.KeyEnter},
	"bs":     {Code: terminal.KeyBackspace},
	"esc":    {Code: terminal.KeyEscape},
	"ctrl+c": {Code: terminal.KeyInterrupt},
	"?":      {Code: terminal.KeyUnknown},
}

func (k *Keys) ReadKey() (terminal.Key, error) {
	if k.OnRead != nil {
		k.OnRead(k.read)
	}
	if k.read >= len(k.keys) {
		return terminal.Key{}, io.EOF
	}
	key := k.keys[k.read]
	k.read++
	if key.Code == terminal.KeyInterrupt {
		return key, terminal.ErrInterrupted
	}
	return key, nil
}

// Remaining reports how many scripted keys were not read.
func (k *Keys) Remaining() int { return len(k.keys) - k.read }

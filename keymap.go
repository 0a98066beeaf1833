package main

// KeyHandler reacts to one named key press.
type KeyHandler func()

// KeyMap routes key names to handlers. Names are the printable
// character for character keys and a fixed word for special keys.
type KeyMap map[string]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

// HandleKey runs the binding for key, reporting whether one existed.
func (km KeyMap) HandleKey(key string) bool {
	handler, ok := km[key]
	if ok {
		handler()
	}
	return ok
}

func (km KeyMap) Bind(key string, handler KeyHandler) {
	km[key] = handler
}

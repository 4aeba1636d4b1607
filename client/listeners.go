package client

import (
	"fmt"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
)

// register a listener invoked on the read loop for every property update
func (w *Wattpilot) OnPropertyChange(cb api.PropertyCallback) func() {
	w.listenerMux.Lock()
	defer w.listenerMux.Unlock()

	w.listenerID++
	id := w.listenerID
	w.propertyListeners = append(w.propertyListeners, propertyListener{id: id, cb: cb})

	return func() {
		w.listenerMux.Lock()
		defer w.listenerMux.Unlock()

		w.propertyListeners = removeListener(w.propertyListeners, func(l propertyListener) bool { return l.id == id })
	}
}

// register a listener invoked on its own goroutine for every property update
//
// returned errors are logged and reported via AsyncErrors
func (w *Wattpilot) OnPropertyChangeAsync(cb api.AsyncPropertyCallback) func() {
	w.listenerMux.Lock()
	defer w.listenerMux.Unlock()

	w.listenerID++
	id := w.listenerID
	w.asyncListeners = append(w.asyncListeners, asyncPropertyListener{id: id, cb: cb})

	return func() {
		w.listenerMux.Lock()
		defer w.listenerMux.Unlock()

		w.asyncListeners = removeListener(w.asyncListeners, func(l asyncPropertyListener) bool { return l.id == id })
	}
}

// register a listener invoked with every decoded frame before it is handled
func (w *Wattpilot) OnMessage(cb api.MessageCallback) func() {
	w.listenerMux.Lock()
	defer w.listenerMux.Unlock()

	w.listenerID++
	id := w.listenerID
	w.messageListeners = append(w.messageListeners, messageListener{id: id, cb: cb})

	return func() {
		w.listenerMux.Lock()
		defer w.listenerMux.Unlock()

		w.messageListeners = removeListener(w.messageListeners, func(l messageListener) bool { return l.id == id })
	}
}

// register a listener invoked when an established connection got lost
func (w *Wattpilot) OnDisconnect(cb api.DisconnectCallback) func() {
	w.listenerMux.Lock()
	defer w.listenerMux.Unlock()

	w.listenerID++
	id := w.listenerID
	w.disconnectListeners = append(w.disconnectListeners, disconnectListener{id: id, cb: cb})

	return func() {
		w.listenerMux.Lock()
		defer w.listenerMux.Unlock()

		w.disconnectListeners = removeListener(w.disconnectListeners, func(l disconnectListener) bool { return l.id == id })
	}
}

// errors returned by async property listeners
//
// errors are dropped while the buffer is full
func (w *Wattpilot) AsyncErrors() <-chan error {
	return w.asyncErrors
}

func removeListener[T any](listeners []T, match func(T) bool) []T {
	result := make([]T, 0, len(listeners))
	for _, l := range listeners {
		if !match(l) {
			result = append(result, l)
		}
	}
	return result
}

func (w *Wattpilot) notifyPropertyChange(key string, value any) {
	w.listenerMux.Lock()
	listeners := append([]propertyListener(nil), w.propertyListeners...)
	asyncListeners := append([]asyncPropertyListener(nil), w.asyncListeners...)
	w.listenerMux.Unlock()

	for _, l := range listeners {
		w.invokePropertyListener(l.cb, key, value)
	}

	for _, l := range asyncListeners {
		go w.invokeAsyncPropertyListener(l.cb, key, value)
	}
}

func (w *Wattpilot) invokePropertyListener(cb api.PropertyCallback, key string, value any) {
	defer func() {
		if r := recover(); r != nil {
			logging.Log().Errorf("Property listener for %s panicked: %v", key, r)
		}
	}()

	cb(key, value)
}

func (w *Wattpilot) invokeAsyncPropertyListener(cb api.AsyncPropertyCallback, key string, value any) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("property listener for %s panicked: %v", key, r)
		}
		if err == nil {
			return
		}

		logging.Log().Error("Async property listener failed: ", err)
		select {
		case w.asyncErrors <- err:
		default:
		}
	}()

	err = cb(key, value)
}

func (w *Wattpilot) notifyMessage(frame *model.Frame) {
	w.listenerMux.Lock()
	listeners := append([]messageListener(nil), w.messageListeners...)
	w.listenerMux.Unlock()

	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.Log().Errorf("Message listener for %s panicked: %v", frame.Type, r)
				}
			}()

			l.cb(frame)
		}()
	}
}

func (w *Wattpilot) notifyDisconnect(err error) {
	w.listenerMux.Lock()
	listeners := append([]disconnectListener(nil), w.disconnectListeners...)
	w.listenerMux.Unlock()

	for _, l := range listeners {
		l.cb(err)
	}
}

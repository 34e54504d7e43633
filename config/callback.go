package config

// Callbacks called when the application configuration is built. Packages that
// depend on parts of the global config (e.g. logger) register a callback at
// init time instead of importing the application config package.
type ConfigCallback[C any] struct {
	callbacks []func(C)
	config    *C
}

func (cc *ConfigCallback[C]) AddCallback(f func(C)) {
	cc.callbacks = append(cc.callbacks, f)
	if cc.config != nil {
		f(*cc.config)
	}
}

func (cc *ConfigCallback[C]) Call(config C) {
	cc.config = &config
	for _, f := range cc.callbacks {
		f(config)
	}
}

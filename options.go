package datecast

//Option caster option
type Option func(o *options)

type options struct {
	eager        bool
	registryHook func(registry Registry)
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

//WithEagerRegistry builds function registry when caster is created
func WithEagerRegistry() Option {
	return func(o *options) {
		o.eager = true
	}
}

//WithRegistryHook sets a hook called once function registry has been built
func WithRegistryHook(fn func(registry Registry)) Option {
	return func(o *options) {
		o.registryHook = fn
	}
}

/*
Package observability provides tools for monitoring the state store.

Metrics translates the store's lifecycle hooks into Prometheus counters:
actions dispatched per verb and model, committed slice changes, and rejected
actions.

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer, "logsearch_state")
	s := store.New(store.WithLifecycleHooks(metrics.Hooks()))
*/
package observability

/*
Package ports defines the narrow write interface the model services depend on.

ActionDispatcher decouples the services' writes from the concrete store, so a host can
route writes through middleware (recording, tracing) or a test double.

# Key Interface

  - ActionDispatcher: accepts actions for processing (implemented by store.Store).
*/
package ports

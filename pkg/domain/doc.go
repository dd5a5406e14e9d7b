/*
Package domain contains the core vocabulary of the log-search view state.

It defines how actions are named and typed, the entities held in each slice of
state, and the observability events emitted while actions are processed. The
package is pure: no I/O, no store, no reducers.

# Key Entities

  - Verb / ActionType: the (verb, model) key every reducer matches on. Its string
    form is "<VERB>_<model>", e.g. "ADD_hosts".
  - Action variants: Add, DeleteObject, DeletePrimitive, Clear, Map and Set, each
    carrying a typed payload.
  - Params: the mapping held by object slices.
  - Entities: AuditLog, ServiceLog, Graph, Node, Filter and friends, the items of
    collection slices.
*/
package domain

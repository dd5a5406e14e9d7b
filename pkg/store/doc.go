/*
Package store implements the central state container of the log-search views.

A Store keeps one value per registered slice. Dispatch runs every registered
reducer against the action, commits the slices that changed in one step and
notifies their subscribers, synchronously and in dispatch order.

	s := store.New(store.WithLogger(logger))
	_ = s.Register(
	    reducer.NewCollection[string]("clusters"),
	    reducer.NewObject("appSettings"),
	)

	sub := store.Select[[]string](s, "clusters").Subscribe(func(names []string) {
	    fmt.Println(names)
	})
	defer sub.Unsubscribe()

	_ = s.Dispatch(domain.Add[string]{Model: "clusters", Items: []string{"cl1"}})

Values handed out by the store are shared and must be treated as immutable;
reducers always build new values instead of modifying old ones.
*/
package store

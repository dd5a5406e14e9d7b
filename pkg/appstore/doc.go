/*
Package appstore assembles the state of the log-search dashboard.

New registers thirteen slices (settings, application flags, audit and service
logs, histogram data, graphs, hosts, user configs, filters, clusters,
components and the two field catalogs) and exposes one service per slice as
the entry point for reading and mutating them:

	app, err := appstore.New(appstore.WithConfig(cfg))
	if err != nil {
	    return err
	}
	_ = app.Clusters.AddInstances([]string{"cl1", "cl2"})
	_ = app.AppSettings.SetParameter("timeZone", "Europe/Budapest")

Apply and Replay accept untyped script steps, which is how the logstate CLI
drives the store.
*/
package appstore

/*
Package reducer generates the state transition functions of collection and
object slices.

A Collection reducer handles ADD, DELETE_OBJECT, DELETE_PRIMITIVE, CLEAR and MAP
for one model; an Object reducer handles SET. Every other action, including
actions addressed to other models, leaves the state untouched.

	hosts := reducer.NewCollection[domain.Node]("hosts")
	next, _ := hosts.Apply(nil, domain.Add[domain.Node]{Model: "hosts", Items: nodes})

	settings := reducer.NewObject("appSettings",
	    reducer.WithDefaultParams(domain.Params{"timeZone": "UTC"}),
	)
*/
package reducer

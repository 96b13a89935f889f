package schema

import "github.com/vk/traingrid/internal/strict"

// Task holds the task-level settings. protein_target is the amino-acid
// sequence the affinity reward scores against; it has no sensible default
// and must be supplied by the task author.
var Task = strict.NewSchema("task").
	Scalar("name", "reactions_task").
	Scalar("protein_target", strict.Missing).
	Scalar("num_objectives", 1).
	Build()

// Affinity holds the settings of the external binding-affinity prediction
// service. The endpoint is required whenever the affinity reward is used;
// timeout_seconds bounds a single prediction round trip.
var Affinity = strict.NewSchema("affinity").
	Scalar("endpoint", strict.Missing).
	Scalar("timeout_seconds", 30.0).
	Scalar("max_batch_size", 32).
	Build()

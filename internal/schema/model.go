package schema

import "github.com/vk/traingrid/internal/strict"

// Model holds the shared model architecture settings.
var Model = strict.NewSchema("model").
	Scalar("num_layers", 4).
	Scalar("num_emb", 128).
	Scalar("dropout", 0.0).
	Build()

// Replay holds the replay-buffer settings. warmup is the number of
// transitions collected before sampling from the buffer begins.
var Replay = strict.NewSchema("replay").
	Scalar("use", false).
	Scalar("capacity", 10_000).
	Scalar("warmup", 1_000).
	Scalar("hindsight_ratio", 0.0).
	Build()

// Conditionals holds the reward-conditioning settings, chiefly the
// temperature distribution sampled per trajectory.
var Conditionals = strict.NewSchema("cond").
	Scalar("temperature_sample_dist", "uniform").
	Scalar("temperature_dist_params", []float64{0.5, 32.0}).
	Scalar("num_thermometer_dim", 32).
	Build()

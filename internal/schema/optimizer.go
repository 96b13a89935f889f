package schema

import "github.com/vk/traingrid/internal/strict"

// Optimizer holds the generic optimizer settings: which optimizer to run
// ("adam" or "sgd"), its learning-rate schedule, and gradient clipping.
// lr_decay is in steps: the factor is 2^(-step / lr_decay).
var Optimizer = strict.NewSchema("optimizer").
	Scalar("opt", "adam").
	Scalar("learning_rate", 1e-4).
	Scalar("lr_decay", 20_000.0).
	Scalar("weight_decay", 1e-8).
	Scalar("momentum", 0.9).
	Scalar("clip_grad_type", "norm").
	Scalar("clip_grad_param", 10.0).
	Scalar("adam_eps", 1e-8).
	Build()

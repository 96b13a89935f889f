package schema

import "github.com/vk/traingrid/internal/strict"

// TrajectoryBalance holds the settings of the trajectory-balance objective.
// The Z estimator gets its own learning-rate schedule, separate from the
// main optimizer's.
var TrajectoryBalance = strict.NewSchema("tb").
	Scalar("variant", "TB").
	Scalar("bootstrap_own_reward", false).
	Scalar("epsilon", nil).
	Scalar("z_learning_rate", 1e-4).
	Scalar("z_lr_decay", 50_000.0).
	Scalar("do_parameterize_p_b", false).
	Scalar("do_sample_p_b", false).
	Build()

// Algo holds the generative-algorithm settings. sampling_tau is the weight
// of the exponential moving average used by the sampling model; the random
// action probabilities inject exploration during training and validation.
var Algo = strict.NewSchema("algo").
	Scalar("method", "TB").
	Scalar("num_from_policy", 64).
	Scalar("max_len", 128).
	Scalar("max_nodes", 128).
	Scalar("illegal_action_logreward", -100.0).
	Scalar("train_random_action_prob", 0.0).
	Scalar("valid_random_action_prob", 0.0).
	Scalar("sampling_tau", 0.0).
	Node("tb", TrajectoryBalance).
	Build()

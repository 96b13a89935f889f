package schema

import "github.com/vk/traingrid/internal/strict"

// Root is the top-level training configuration. log_dir deliberately
// defaults to Missing: there is no safe place to guess, so every experiment
// must name one. The *_every counters are in training steps;
// checkpoint_every and num_final_gen_steps may stay nil to disable the
// behavior entirely.
var Root = strict.NewSchema("config").
	Scalar("desc", "noDesc").
	Scalar("log_dir", strict.Missing).
	Scalar("device", "cuda").
	Scalar("seed", 0).
	Scalar("validate_every", 1_000).
	Scalar("checkpoint_every", nil).
	Scalar("store_all_checkpoints", false).
	Scalar("print_every", 100).
	Scalar("start_at_step", 0).
	Scalar("num_final_gen_steps", nil).
	Scalar("num_training_steps", 10_000).
	Scalar("num_workers", 0).
	Scalar("overwrite_existing_exp", false).
	Scalar("reward", "binding_affinity").
	Node("algo", Algo).
	Node("model", Model).
	Node("opt", Optimizer).
	Node("replay", Replay).
	Node("task", Task).
	Node("cond", Conditionals).
	Node("affinity", Affinity).
	Build()

// Default returns a fully default-valued training configuration tree.
func Default() *strict.Node {
	return strict.NewNode(Root)
}

// Empty returns a template tree where every leaf holds strict.Missing.
// Task code typically fills in a handful of fields on the template and
// merges the result over Default() via strict.Override.
func Empty() *strict.Node {
	return strict.InitEmpty(Default())
}

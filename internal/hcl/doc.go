// Package hcl loads override files written in HCL attribute syntax into the
// agnostic override model. A file is a flat set of attributes whose values
// may be object expressions, which become nested override mappings:
//
//	log_dir = "/tmp/exp-1"
//	opt = {
//	  learning_rate = 5e-5
//	}
package hcl

package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a configuration file.
type fileRoot struct {
	Messages *messagesBlock `hcl:"messages,block"`
	Input    *inputBlock    `hcl:"input,block"`
}

// messagesBlock holds one template attribute per message key. The keys are
// validated after decoding, so the body is kept raw.
type messagesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// inputBlock configures the input reader. Unset attributes keep the value
// from earlier files or the defaults.
type inputBlock struct {
	MaxReadRetries *int    `hcl:"max_read_retries,optional"`
	RetryInterval  *string `hcl:"retry_interval,optional"`
}

package payload

import "regexp"

var txHashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
var signatureRegex = regexp.MustCompile(`^(0x)?[a-fA-F0-9]{130}$`)

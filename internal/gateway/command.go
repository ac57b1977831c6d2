package gateway

// CommandTypeCacheAudio asks the gateway to fetch an audio URL and store it
// in the audio partition.
const CommandTypeCacheAudio = "CACHE_AUDIO"

// Command is a request posted to the gateway mailbox.
type Command struct {
	// Type identifies the operation. Unknown types are ignored.
	Type string
	// URL is the target of the operation.
	URL string
}

// Ack is the gateway's reply to a command.
type Ack struct {
	// OK reports whether the command succeeded.
	OK bool
	// Error holds the failure reason when OK is false.
	Error string
}

// commandEnvelope pairs a command with its dedicated reply channel and a
// correlation ID used in logs.
type commandEnvelope struct {
	command       Command
	correlationID string
	reply         chan Ack
}

// Package notify delivers rendered audit reports to their recipients.
//
// Delivery is best effort: a Sink either accepts a message or returns an error, and
// callers decide what a failure means. Finalizing a conference never depends on it.
//
// # Sinks
//
//   - StorageSink: writes the message as a text object into the outbox bucket, with the
//     recipients attached as object metadata. A mail relay or operator picks it up from
//     there.
//   - LogSink: writes the message to the structured log. Useful in development.
//
// NewSink builds the sink selected by Config.Driver.
package notify

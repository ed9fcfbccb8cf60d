// Package tracing records gnuplot sessions as OpenTelemetry spans. Without a
// call to Init the global no-op provider is used and spans cost nothing, so
// sessions always trace and applications decide whether anything is exported.
package tracing

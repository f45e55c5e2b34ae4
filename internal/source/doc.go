// Package source implements the adapters for the third-party lookup
// services a scan fans out to: the breach database, the email reputation
// service, the username-presence relay, the social mention search, and
// the web search engine.
//
// Every adapter follows the same contract: it is constructed with an
// injected Doer and CredentialReader, returns an empty result without a
// network call when its credential is missing, treats HTTP 404 as a
// successful empty result, and degrades to an empty result on any other
// failure. The one exception is BreachSource, whose failures are returned
// to the caller so a scan pass can be aborted when breach data is
// unavailable.
package source

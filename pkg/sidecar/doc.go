// Package sidecar builds MediaHaven metadata sidecars for media assets and
// ships them to their destination.
//
// A sidecar is a namespaced XML document describing an asset, parsed by
// MediaHaven purely by shape: an mhs:Sidecar root versioned by the metadata
// model, one mhs element per category, and field elements whose namespace
// depends on the category (Technical fields under mh, Dynamic fields bare).
// Build materializes a validated Metadata mapping into such a document;
// Document.Bytes and Document.String serialize it.
//
// The surrounding pipeline lives in subpackages: event models the
// storage-event notification and extracts fields from it, transfer provides
// delivery sinks (FTP, S3, memory), and api exposes the notification intake
// webhook. Service wires the whole flow for one notification.
//
// MediaHaven's sidecar documentation:
// https://mediahaven.atlassian.net/wiki/spaces/CS/pages/488964146/Metadata+Sidecar
package sidecar

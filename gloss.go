// Package gloss builds glossaries of technical terms from documentation
// files. It supports two pipelines: matching documents against a static
// JSON term database, and extracting terms dynamically with a generative
// model. Both produce a Glossary rendered to Markdown, JSON, HTML, plain
// text, or a console table.
//
// This package contains domain types, interfaces, and the pure matching,
// chunking, and merging logic following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., gemini/, sqlite/, bloom/).
package gloss

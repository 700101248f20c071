package canonjson

// Package canonjson provides:
//
// - Canonical JSON serialization (Serialize/Append): deterministic member
//   order, ASCII-only escaping, shortest round-trip ES6-style numbers
// - A stable error model via Issue (JSON Pointer, code, message)
// - Pluggable parsing through the Driver SPI (Canonicalize/ParseBytes),
//   go-json by default with stdlib/sonic/jsonv2 alternates under source/
// - Duplicate member-name scanning for callers that hash or sign output
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place parser drivers under source/, YAML ingestion under yamlval/,
//   digest helpers under digest/, and the CLI under cmd/canonjson.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  out, err := canonjson.Canonicalize(data)
//
//  v, err := canonjson.ParseBytes(data)
//  out, err := canonjson.Serialize(v)
//
//  tree := canonjson.Object{"id": canonjson.String("u_1"), "n": canonjson.Number(1)}
//  out, err := canonjson.Serialize(tree)
//

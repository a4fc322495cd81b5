// Package jsonvalue provides reference-counted handles over an in-memory
// JSON document with typed read and write access.
//
// The package uses an internal package for implementation details:
//
//   - internal: the reference-counted node tree, the parser and compact
//     printer built on json-iterator, and codec metrics
//
// # Basic Usage
//
// Parse a document and read from it:
//
//	v, err := jsonvalue.Parse(`{"dbtype":"mongo","mongo":{"hostip":"127.0.0.1"}}`)
//	if err != nil {
//		return err
//	}
//	defer v.Close()
//
//	dbtype, err := v.GetValue("dbtype")
//
// Build a document and serialize it:
//
//	v := jsonvalue.New()
//	defer v.Close()
//	_ = v.CreateRootObject()
//	_ = v.PutValue("name", "orders")
//	_ = v.PutInt64("shards", 12)
//
//	buf, err := v.ToBuffer()
//	if err != nil {
//		return err
//	}
//	defer buf.Release()
//	os.Stdout.Write(buf.Bytes()) // {"name":"orders","shards":12}
//
// # Sharing
//
// A Value holds one reference to a node. Clone and Assign share the node
// instead of copying the tree, so every handle on a node sees every change
// made through any of them. GetObject and GetCollection return handles that
// alias nodes inside the parent:
//
//	mongo, err := v.GetObject("mongo")
//	if err != nil {
//		return err
//	}
//	defer mongo.Close()
//	_ = mongo.PutValue("port", "27017") // visible through v as mongo.port
//
// PutObject and PutCollection install the nodes the given handles hold; the
// parent and the handles share them afterwards. Scalars are always copied.
//
// Close releases a handle's reference. A node is freed once no handle and no
// parent container refers to it.
//
// # Typed Access
//
// GetInt64, GetUint64, GetFloat64, GetBool and GetText read any scalar by
// rendering it to text and converting that text. The typed putters render the
// Go value to text and store a JSON integer when the text is a base-10
// integer, and a JSON string otherwise:
//
//	_ = v.PutFloat64("ratio", 3.0)  // stored as 3
//	_ = v.PutFloat64("ratio", 3.5)  // stored as "3.5"
//	_ = v.PutInt64("mask", 255, jsonvalue.Hex) // stored as "ff"
//
// # Configuration
//
// A Codec carries the configuration, logger and metrics used for parsing and
// serialization. Values created through New and Parse use the default codec:
//
//	codec := jsonvalue.NewCodec(jsonvalue.HighSecurityConfig())
//	v, err := codec.Parse(input)
//
// Configuration can also be loaded from YAML with LoadConfig.
//
// # Concurrency
//
// A Codec is safe for concurrent use. Values are not: handles that share
// nodes across goroutines need external synchronization.
package jsonvalue

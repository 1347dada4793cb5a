// Package tei holds the in-memory model of a TEI drama document, the stateful
// builder that appends acts, scenes, speeches and stage directions to it, and
// the XML encoder.
//
// The model mirrors the subset of TEI P5 used for drama:
//
//	TEI
//	├── teiHeader (title, author, language, listPerson)
//	└── text/body
//	    └── div[@type=act]
//	        └── div[@type=scene]
//	            ├── stage
//	            └── sp[@who]
//	                ├── speaker
//	                ├── p
//	                ├── lg/l
//	                └── stage
//
// Nodes are only ever appended. The cast list is filled once by
// Builder.Finalize after the body is complete.
package tei

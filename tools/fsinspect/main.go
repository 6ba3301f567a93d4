package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ceskydata/firemodel/pkg/wire"
)

var (
	refString = flag.String("ref", "", "resource name to decompose")
	docFile   = flag.String("doc", "", "path to a JSON document to inspect")
	eventFile = flag.String("event", "", "path to a JSON trigger event to inspect")
)

func printRef(raw string) {
	ref := wire.NewReference(raw)

	projectID, err := ref.ProjectID()
	if err != nil {
		log.Fatalf("%s\n", err)
	}
	databaseID, _ := ref.DatabaseID()
	path, _ := ref.Path()
	id, _ := ref.ID()
	collectionPath, _ := ref.CollectionPath()

	fmt.Printf("project:    %s\n", projectID)
	fmt.Printf("database:   %s\n", databaseID)
	fmt.Printf("path:       %s\n", path)
	fmt.Printf("id:         %s\n", id)
	fmt.Printf("collection: %s\n", collectionPath)
}

func printValue(indent int, key string, v wire.Value) {
	prefix := strings.Repeat("  ", indent)
	label := ""
	if key != "" {
		label = key + ": "
	}

	switch v.Kind() {
	case wire.KindString:
		fmt.Printf("%s%s%s %q\n", prefix, label, v.Kind(), *v.String)
	case wire.KindInteger:
		fmt.Printf("%s%s%s %d\n", prefix, label, v.Kind(), *v.Integer)
	case wire.KindDouble:
		fmt.Printf("%s%s%s %v\n", prefix, label, v.Kind(), *v.Double)
	case wire.KindBoolean:
		fmt.Printf("%s%s%s %v\n", prefix, label, v.Kind(), *v.Boolean)
	case wire.KindNull:
		fmt.Printf("%s%s%s\n", prefix, label, v.Kind())
	case wire.KindTimestamp:
		fmt.Printf("%s%s%s %s\n", prefix, label, v.Kind(), *v.Timestamp)
	case wire.KindGeoPoint:
		fmt.Printf("%s%s%s %v,%v\n", prefix, label, v.Kind(), v.GeoPoint.Latitude, v.GeoPoint.Longitude)
	case wire.KindReference:
		fmt.Printf("%s%s%s %s\n", prefix, label, v.Kind(), v.Reference.Raw())
	case wire.KindMap:
		fmt.Printf("%s%s%s (%d fields)\n", prefix, label, v.Kind(), v.Map.Len())
		v.Map.Range(func(k string, field wire.Value) bool {
			printValue(indent+1, k, field)
			return true
		})
	case wire.KindArray:
		fmt.Printf("%s%s%s (%d elements)\n", prefix, label, v.Kind(), len(v.Array))
		for _, element := range v.Array {
			printValue(indent+1, "", element)
		}
	default:
		fmt.Printf("%s%s%s\n", prefix, label, v.Kind())
	}
}

func printDocument(doc wire.Document) {
	if doc.Name != "" {
		fmt.Printf("name:       %s\n", doc.Name)
		if id, err := doc.Ref().ID(); err == nil {
			fmt.Printf("id:         %s\n", id)
		}
	}
	if doc.CreateTime != "" {
		fmt.Printf("createTime: %s\n", doc.CreateTime)
	}
	if doc.UpdateTime != "" {
		fmt.Printf("updateTime: %s\n", doc.UpdateTime)
	}
	fmt.Printf("fields:     %d\n", doc.Fields.Len())
	doc.Fields.Range(func(key string, v wire.Value) bool {
		printValue(1, key, v)
		return true
	})
}

func inspectDocument(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error while reading %s: %s\n", path, err)
	}

	var doc wire.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatalf("Error while decoding document: %s\n", err)
	}

	printDocument(doc)
}

func inspectEvent(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error while reading %s: %s\n", path, err)
	}

	var event wire.Event
	if err := json.Unmarshal(data, &event); err != nil {
		log.Fatalf("Error while decoding event: %s\n", err)
	}

	if event.OldValue.Name != "" || event.OldValue.Fields.Len() > 0 {
		fmt.Println("--- old value ---")
		printDocument(event.OldValue)
	}
	if event.Value.Name != "" || event.Value.Fields.Len() > 0 {
		fmt.Println("--- value ---")
		printDocument(event.Value)
	}
	if len(event.UpdateMask.FieldPaths) > 0 {
		fmt.Printf("updated:    %s\n", strings.Join(event.UpdateMask.FieldPaths, ", "))
	}
}

func main() {
	flag.Parse()

	switch {
	case *refString != "":
		printRef(*refString)
	case *docFile != "":
		inspectDocument(*docFile)
	case *eventFile != "":
		inspectEvent(*eventFile)
	default:
		flag.PrintDefaults()
		os.Exit(0)
	}
}

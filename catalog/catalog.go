// Package catalog keeps a per-document record of what has been
// transcribed, in a DynamoDB table keyed by document path. It is an
// optional bookkeeping layer: pipeline stages work fine without it.
package catalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

type Record struct {
	Path      string
	Title     string
	Part      string
	NoteCount int
	UpdatedAt time.Time
}

type Client struct {
	table string
	svc   *dynamodb.DynamoDB
}

// Getter is the read side of the catalog, satisfied by *Client.
type Getter interface {
	Get(paths []string) (map[string]Record, error)
}

func New(endpoint, table string) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session because %v", err)
	}
	return &Client{table: table, svc: dynamodb.New(sess)}, nil
}

func (c *Client) Put(rec Record) error {
	item := map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(rec.Path)},
		"Title":     {S: aws.String(rec.Title)},
		"Part":      {S: aws.String(rec.Part)},
		"NoteCount": {N: aws.String(strconv.Itoa(rec.NoteCount))},
		"UpdatedAt": {S: aws.String(rec.UpdatedAt.UTC().Format(time.RFC3339))},
	}
	_, err := c.svc.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	return err
}

const batchLimit = 10

// Describe returns one display line per path, annotated with the
// catalog record when one exists. Lookups are chunked to stay under
// Get's key limit; a failed chunk leaves its paths bare.
func Describe(g Getter, paths []string) []string {
	recs := make(map[string]Record)
	for start := 0; start < len(paths); start += batchLimit {
		end := start + batchLimit
		if end > len(paths) {
			end = len(paths)
		}
		got, err := g.Get(paths[start:end])
		if err != nil {
			continue
		}
		for path, rec := range got {
			recs[path] = rec
		}
	}

	lines := make([]string, 0, len(paths))
	for _, path := range paths {
		rec, ok := recs[path]
		if !ok {
			lines = append(lines, path)
			continue
		}
		lines = append(lines, fmt.Sprintf("%v  [%v / %v, %v notes]", path, rec.Title, rec.Part, rec.NoteCount))
	}
	return lines
}

func (c *Client) Get(paths []string) (map[string]Record, error) {
	res := make(map[string]Record)
	if len(paths) == 0 {
		return res, nil
	}
	if len(paths) > batchLimit {
		return nil, fmt.Errorf("not supposed to pass in more than %v paths", batchLimit)
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, path := range paths {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(path)},
		})
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			c.table: {Keys: keys},
		},
	}
	dbres, err := c.svc.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %v", err)
	}

	for _, v := range dbres.Responses[c.table] {
		var rec Record
		rec.Path = aws.StringValue(v["PK"].S)
		if v["Title"] != nil {
			rec.Title = aws.StringValue(v["Title"].S)
		}
		if v["Part"] != nil {
			rec.Part = aws.StringValue(v["Part"].S)
		}
		if v["NoteCount"] != nil && v["NoteCount"].N != nil {
			count, _ := strconv.Atoi(*v["NoteCount"].N)
			rec.NoteCount = count
		}
		if v["UpdatedAt"] != nil {
			rec.UpdatedAt, _ = time.Parse(time.RFC3339, aws.StringValue(v["UpdatedAt"].S))
		}
		res[rec.Path] = rec
	}
	return res, nil
}

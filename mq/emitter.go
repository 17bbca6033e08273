package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tagnest/db"
	"tagnest/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tagEventsChannel = "tag-events"

// TagEvent links one extracted token to the caption it was found in.
// Kind is "hashtag" or "mention".
type TagEvent struct {
	Kind      string `json:"kind"`
	CaptionID string `json:"caption_id"`
	TagName   string `json:"tag_name"`
}

// EmitTagEvents publishes one event per extracted token to Redis Pub/Sub.
func EmitTagEvents(kind string, captionID string, tokens []string) {
	ctx := context.Background()
	for _, tok := range tokens {
		evt := TagEvent{
			Kind:      kind,
			CaptionID: captionID,
			TagName:   tok,
		}

		data, err := json.Marshal(evt)
		if err != nil {
			log.Printf("[EmitTagEvents] marshal error for %s: %v", tok, err)
			continue
		}

		if err := rdx.Conn.Publish(ctx, tagEventsChannel, data).Err(); err != nil {
			log.Printf("[EmitTagEvents] publish error for %s: %v", tok, err)
		}
	}
}

// StartTagWorker consumes tag events and maintains the tags index collection.
func StartTagWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, tagEventsChannel)
	ch := sub.Channel()

	log.Println("[TagWorker] Listening for tag events...")

	for msg := range ch {
		var evt TagEvent
		if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
			log.Printf("[TagWorker] unmarshal error: %v", err)
			continue
		}

		filter := bson.M{
			"name": evt.TagName,
			"kind": evt.Kind,
		}

		// Check if this caption is already linked
		existsFilter := bson.M{
			"name":     evt.TagName,
			"kind":     evt.Kind,
			"captions": evt.CaptionID,
		}
		count, err := db.TagsCollection.CountDocuments(ctx, existsFilter)
		if err != nil {
			log.Printf("[TagWorker] count error: %v", err)
			continue
		}

		update := bson.M{
			"$set": bson.M{"updatedat": time.Now()},
			"$addToSet": bson.M{
				"captions": evt.CaptionID,
			},
		}
		if count == 0 {
			update["$inc"] = bson.M{"totalcaptions": 1}
		}

		opts := options.Update().SetUpsert(true)
		if _, err := db.TagsCollection.UpdateOne(ctx, filter, update, opts); err != nil {
			log.Printf("[TagWorker] update error: %v", err)
			continue
		}

		log.Printf("[TagWorker] processed %s %s for caption %s", evt.Kind, evt.TagName, evt.CaptionID)
	}
}

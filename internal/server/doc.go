// Package server exposes the catalog, the curve lab and tutor sessions over
// HTTP with gin.
//
// Routes:
//
//	GET  /healthcheck
//	GET  /api/topics
//	GET  /api/topics/:topic
//	GET  /api/curves/:topic          ?r=&a=&b=&p=
//	GET  /api/curves/:topic/svg      ?r=&a=&b=&p=
//	POST /api/sessions               {"topic": "ellipse"}
//	GET  /api/sessions/:id
//	POST /api/sessions/:id/messages  {"text": "...", "topic": "..."}
//
// Errors use the envelope {"error": {"message", "code"}}. Sessions live in
// memory only.
package server

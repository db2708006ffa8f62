package elasticsearch

// SessionIndexMapping defines the Elasticsearch mapping for the site sessions index.
const SessionIndexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 1,
    "analysis": {
      "analyzer": {
        "default": {
          "type": "standard"
        }
      }
    }
  },
  "mappings": {
    "properties": {
      "key": {
        "type": "keyword"
      },
      "id": {
        "type": "keyword"
      },
      "title": {
        "type": "text",
        "fields": {
          "keyword": {
            "type": "keyword",
            "ignore_above": 256
          }
        }
      },
      "description": {
        "type": "text"
      },
      "language": {
        "type": "keyword"
      },
      "format": {
        "type": "keyword"
      },
      "level": {
        "type": "keyword"
      },
      "tags": {
        "type": "keyword"
      },
      "speakers": {
        "type": "keyword"
      },
      "videoId": {
        "type": "keyword",
        "index": false
      },
      "presentation": {
        "type": "keyword",
        "index": false
      },
      "draft": {
        "type": "boolean"
      }
    }
  }
}`

// SpeakerIndexMapping defines the Elasticsearch mapping for the site speakers index.
const SpeakerIndexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 1
  },
  "mappings": {
    "properties": {
      "key": {
        "type": "keyword"
      },
      "id": {
        "type": "keyword"
      },
      "name": {
        "type": "text",
        "fields": {
          "keyword": {
            "type": "keyword",
            "ignore_above": 256
          }
        }
      },
      "company": {
        "type": "text",
        "fields": {
          "keyword": {
            "type": "keyword",
            "ignore_above": 256
          }
        }
      },
      "city": {
        "type": "keyword"
      },
      "description": {
        "type": "text"
      },
      "photoURL": {
        "type": "keyword",
        "index": false
      },
      "feature": {
        "type": "boolean"
      },
      "draft": {
        "type": "boolean"
      },
      "socials": {
        "type": "nested",
        "properties": {
          "icon": {
            "type": "keyword"
          },
          "link": {
            "type": "keyword",
            "index": false
          }
        }
      }
    }
  }
}`

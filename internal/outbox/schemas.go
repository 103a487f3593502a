package outbox

const checkInCreatedSchema = `{
  "type": "object",
  "title": "CheckInCreated",
  "properties": {
    "check_in_id": {"type": "string"},
    "user_id": {"type": "string"},
    "gym_id": {"type": "string"},
    "created_at": {"type": "string", "format": "date-time"},
    "day": {"type": "string", "format": "date"}
  },
  "required": ["check_in_id", "user_id", "gym_id", "created_at", "day"],
  "additionalProperties": false
}`

const gymCreatedSchema = `{
  "type": "object",
  "title": "GymCreated",
  "properties": {
    "gym_id": {"type": "string"},
    "title": {"type": "string"},
    "description": {"type": "string"},
    "phone": {"type": "string"},
    "latitude": {"type": "number"},
    "longitude": {"type": "number"}
  },
  "required": ["gym_id", "title", "latitude", "longitude"],
  "additionalProperties": false
}`

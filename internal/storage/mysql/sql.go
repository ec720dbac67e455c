package mysql

// The id=LAST_INSERT_ID(id) trick makes LastInsertId meaningful on the
// duplicate path too, so the seeder learns the row's id either way.
const upsertDestinationSQL = `
INSERT INTO destinations
  (name, country, airport_code, image_url, description)
VALUES
  (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  id           = LAST_INSERT_ID(id),
  country      = VALUES(country),
  airport_code = VALUES(airport_code),
  image_url    = VALUES(image_url),
  description  = VALUES(description),
  updated_at   = CURRENT_TIMESTAMP
`

const upsertFlightSQL = `
INSERT INTO flights
  (destination_id, airline, flight_number, origin, departure_time, arrival_time, duration, price, available_seats, aircraft)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  destination_id  = VALUES(destination_id),
  airline         = VALUES(airline),
  origin          = VALUES(origin),
  arrival_time    = VALUES(arrival_time),
  duration        = VALUES(duration),
  price           = VALUES(price),
  available_seats = VALUES(available_seats),
  aircraft        = VALUES(aircraft)
`

const upsertAccommodationSQL = `
INSERT INTO accommodations
  (destination_id, name, type, address, rating, price_per_night, amenities, available_rooms, image_url, description)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  type            = VALUES(type),
  address         = VALUES(address),
  rating          = VALUES(rating),
  price_per_night = VALUES(price_per_night),
  amenities       = VALUES(amenities),
  available_rooms = VALUES(available_rooms),
  image_url       = VALUES(image_url),
  description     = VALUES(description)
`

const insertSearchSQL = `
INSERT INTO search_history
  (id, destination, check_in, check_out, guests, budget, preferences, results_count, mode, query)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const findDestinationSQL = `
SELECT id, name, country, airport_code, image_url, description
FROM destinations
WHERE LOWER(name) LIKE CONCAT('%', LOWER(?), '%')
ORDER BY id
LIMIT 1
`

const listDestinationsSQL = `
SELECT id, name, country, airport_code, image_url, description
FROM destinations
ORDER BY name
`

const listFlightsSQL = `
SELECT id, destination_id, airline, flight_number, origin, departure_time, arrival_time, duration, price, available_seats, aircraft
FROM flights
WHERE destination_id = ?
  AND departure_time >= ? AND departure_time <= ?
  AND available_seats >= ?
  AND price <= ?
ORDER BY price ASC, departure_time ASC
LIMIT ?
`

// The type IN (...) clause is appended dynamically in the repo since
// the set size varies.
const listAccommodationsPrefix = `
SELECT id, destination_id, name, type, address, rating, price_per_night, amenities, available_rooms, image_url, description
FROM accommodations
WHERE destination_id = ?
  AND available_rooms >= ?
  AND price_per_night <= ?
`

const listAccommodationsSuffix = `
ORDER BY rating DESC, price_per_night ASC
LIMIT ?
`

const recentSearchesSQL = `
SELECT id, destination, check_in, check_out, guests, budget, preferences, results_count, mode, query, created_at
FROM search_history
ORDER BY created_at DESC, id DESC
LIMIT ?
`

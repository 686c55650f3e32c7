package tcpostgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema of the session database (circuit linked variant)
var schemaStatements = []string{
	`create table if not exists circuits (
		id serial primary key,
		name text not null,
		rotation double precision not null default 0)`,
	`create table if not exists corners (
		id serial primary key,
		circuit_id int not null references circuits (id),
		x double precision, y double precision,
		number int, letter text,
		angle double precision, distance double precision)`,
	`create table if not exists marshal_lights (
		id serial primary key,
		circuit_id int not null references circuits (id),
		x double precision, y double precision,
		number int, letter text,
		angle double precision, distance double precision)`,
	`create table if not exists marshal_sectors (
		id serial primary key,
		circuit_id int not null references circuits (id),
		x double precision, y double precision,
		number int, letter text,
		angle double precision, distance double precision)`,
	`create table if not exists teams (
		id serial primary key,
		name text not null,
		color text)`,
	`create table if not exists drivers (
		id serial primary key,
		name text not null,
		broadcast_name text,
		driver_number int,
		abbrevation text not null,
		country text,
		first_name text,
		last_name text)`,
	`create table if not exists sessions (
		id serial primary key,
		event_name text not null,
		session_name text not null,
		date text,
		circuit_id int references circuits (id))`,
	`create table if not exists results (
		id serial primary key,
		driver_id int not null references drivers (id),
		team_id int not null references teams (id),
		session_id int not null references sessions (id),
		position int,
		classified_position text,
		grid_position int,
		q1 text, q2 text, q3 text,
		time text,
		status text,
		points double precision not null default 0,
		laps int not null default 0)`,
	`create table if not exists laps (
		id serial primary key,
		timestamp text,
		session_id int not null references sessions (id),
		driver_id int not null references drivers (id),
		lap_number int not null,
		lap_time text,
		stint int,
		sector1_time text, sector2_time text, sector3_time text,
		sector1_session_time text, sector2_session_time text,
		sector3_session_time text,
		speed1 double precision, speed2 double precision,
		speedFL double precision, speedST double precision,
		personal_best bool not null default false,
		compound text,
		tyre_life int,
		fresh_tyre bool not null default false,
		lap_start_time text, lap_start_date text,
		track_status text,
		position int,
		pit_in_time text, pit_out_time text)`,
	`create table if not exists weather (
		id serial primary key,
		session_id int not null references sessions (id),
		timestamp text,
		air_temp double precision, humidity double precision,
		pressure double precision,
		rainfall bool not null default false,
		track_temp double precision,
		wind_direction int, wind_speed double precision)`,
	`create table if not exists telemetry (
		id serial primary key,
		lap_id int not null references laps (id),
		time text, date text,
		rpm double precision, speed double precision,
		ngear int,
		throttle double precision,
		brake bool not null default false,
		drs int,
		distance double precision,
		driver_ahead int, dist_to_driver_ahead double precision,
		rel_dist double precision,
		status text,
		x double precision, y double precision, z double precision)`,
}

func createSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

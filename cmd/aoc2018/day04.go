package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day04"
)

func (s solver) sleepTimes() map[int]*day04.Histogram {
	entries := aoc.MustGet(day04.ParseEntries(s.Lines()))
	sleep := aoc.MustGet(day04.SleepTimes(entries))
	s.Debugf("%d entries, %d guards asleep at some point", len(entries), len(sleep))
	return sleep
}

/*
want=240

[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:05] falls asleep
[1518-11-01 00:25] wakes up
[1518-11-01 00:30] falls asleep
[1518-11-01 00:55] wakes up
[1518-11-01 23:58] Guard #99 begins shift
[1518-11-02 00:40] falls asleep
[1518-11-02 00:50] wakes up
[1518-11-03 00:05] Guard #10 begins shift
[1518-11-03 00:24] falls asleep
[1518-11-03 00:29] wakes up
[1518-11-04 00:02] Guard #99 begins shift
[1518-11-04 00:36] falls asleep
[1518-11-04 00:46] wakes up
[1518-11-05 00:03] Guard #99 begins shift
[1518-11-05 00:45] falls asleep
[1518-11-05 00:55] wakes up
*/
func (s solver) D4p1() any {
	return aoc.MustGet(day04.Strategy1(s.sleepTimes()))
}

// want=4455
func (s solver) D4p2() any {
	return aoc.MustGet(day04.Strategy2(s.sleepTimes()))
}

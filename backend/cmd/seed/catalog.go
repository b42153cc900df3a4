package main

import "smartscore/backend/models"

// mcaCourses is the MCA catalogue: semester 1 and 2 core papers, labs and semester 2 electives.
var mcaCourses = []models.Course{
	// Semester 1 core
	{CourseCode: "20MCA101", CourseName: "Mathematical Foundations for Computing Applications", Department: "MCA"},
	{CourseCode: "20MCA103", CourseName: "Digital Fundamentals & Computer Architecture", Department: "MCA"},
	{CourseCode: "20MCA105", CourseName: "Advanced Data Structures", Department: "MCA"},
	{CourseCode: "20MCA107", CourseName: "Advanced Software Engineering Methodology", Department: "MCA"},

	// Semester 1 labs
	{CourseCode: "20MCA131", CourseName: "Programming Lab", Department: "MCA"},
	{CourseCode: "20MCA133", CourseName: "Web Programming Lab", Department: "MCA"},
	{CourseCode: "20MCA135", CourseName: "Data Structures Lab", Department: "MCA"},

	// Semester 2 core
	{CourseCode: "20MCA102", CourseName: "Advanced Database Management Systems", Department: "MCA"},
	{CourseCode: "20MCA104", CourseName: "Advanced Computer Networks", Department: "MCA"},

	// Semester 2 labs
	{CourseCode: "20MCA132", CourseName: "Object Oriented Programming Lab", Department: "MCA"},
	{CourseCode: "20MCA134", CourseName: "Advanced DBMS Lab", Department: "MCA"},
	{CourseCode: "20MCA136", CourseName: "Networking & System Administration Lab", Department: "MCA"},

	// Semester 2 electives
	{CourseCode: "20MCA162", CourseName: "Applied Statistics", Department: "MCA"},
	{CourseCode: "20MCA164", CourseName: "Organizational Behaviour", Department: "MCA"},
	{CourseCode: "20MCA166", CourseName: "Cyber Security", Department: "MCA"},
	{CourseCode: "20MCA168", CourseName: "Virtualisation and Containers", Department: "MCA"},
	{CourseCode: "20MCA172", CourseName: "Advanced Operating Systems", Department: "MCA"},
}

// retiredCourses are semester 1 electives that are no longer offered.
var retiredCourses = []string{"20MCA161", "20MCA163", "20MCA165", "20MCA167", "20MCA169", "20MCA171"}

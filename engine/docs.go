/*
	opengl model viewer engine

	one window, one program, one drawn mesh

	context
		glfw window, gl 3.3 core state, viewport on resize
	program
		vertex + fragment shader from file
		attributes: vertexPosition (0), vertexNormal (1)
		uniforms: modelMatrix, projectionMatrix, mvpMatrix
	geometry (cpu)
		positions, normals/colors, triangle indices
	mesh (gpu)
		vao, single vbo {positions, attributes}, ibo
	renderer
		clear, transform, draw, swap, poll
		closes the window when the run context is canceled

	all gl calls must happen on the thread that owns the context,
	main locks the os thread in init
*/

package engine
